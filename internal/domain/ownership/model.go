package ownership

import "sort"

// Index maps player ids to the label of the manager holding them. It is
// immutable once built.
type Index struct {
	owners map[int64]string
}

// Entry is one owned player.
type Entry struct {
	PlayerID int64
	Owner    string
}

// Builder accumulates ownership. Assign on an already owned player replaces
// the previous owner.
type Builder struct {
	owners map[int64]string
}

func NewBuilder() *Builder {
	return &Builder{owners: make(map[int64]string)}
}

// Assign records playerID as owned by owner and returns the replaced owner,
// if any.
func (b *Builder) Assign(playerID int64, owner string) (previous string, replaced bool) {
	previous, replaced = b.owners[playerID]
	b.owners[playerID] = owner
	return previous, replaced
}

func (b *Builder) Build() Index {
	out := make(map[int64]string, len(b.owners))
	for k, v := range b.owners {
		out[k] = v
	}
	return Index{owners: out}
}

func (i Index) Owner(playerID int64) (string, bool) {
	owner, ok := i.owners[playerID]
	return owner, ok
}

func (i Index) Len() int {
	return len(i.owners)
}

// Entries lists the index sorted by player id.
func (i Index) Entries() []Entry {
	out := make([]Entry, 0, len(i.owners))
	for id, owner := range i.owners {
		out = append(out, Entry{PlayerID: id, Owner: owner})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].PlayerID < out[b].PlayerID })
	return out
}

// Availability is the answer to "who owns player P".
type Availability struct {
	PlayerID int64
	Owned    bool
	OwnedBy  string
}

const (
	StatusAvailable = "available"
	StatusOwned     = "owned"
)

func (a Availability) Status() string {
	if a.Owned {
		return StatusOwned
	}
	return StatusAvailable
}

// Describe looks up playerID without checking that the player exists.
func (i Index) Describe(playerID int64) Availability {
	owner, ok := i.Owner(playerID)
	if !ok {
		return Availability{PlayerID: playerID}
	}
	return Availability{PlayerID: playerID, Owned: true, OwnedBy: owner}
}
