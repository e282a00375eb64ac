package tennis

import "fmt"

// Player identifies one side of a match: a single player or a doubles team.
// Players are comparable and only ever used as keys.
type Player struct {
	name    string
	partner string
}

// Singles returns the identity of a singles player
func Singles(name string) Player {
	return Player{name: name}
}

// Doubles returns the identity of a doubles team
func Doubles(first, second string) Player {
	return Player{name: first, partner: second}
}

// IsDoubles reports whether the identity is a team
func (p Player) IsDoubles() bool {
	return p.partner != ""
}

// IsZero reports whether p is the zero identity
func (p Player) IsZero() bool {
	return p == Player{}
}

func (p Player) String() string {
	if p.IsDoubles() {
		return fmt.Sprintf("%s, %s", p.name, p.partner)
	}
	return p.name
}
