package physics

// Category is the collision tag carried by every body. Values are bit flags
// so contact masks can be expressed as unions.
type Category uint32

const (
	CategoryNone         Category = 0 // untagged debris
	CategoryPlayer       Category = 1
	CategoryPlayerWeapon Category = 2
	CategoryEnemy        Category = 4
	CategoryEnemyWeapon  Category = 8
)

// Categories lists every tag, untagged included.
var Categories = []Category{CategoryNone, CategoryPlayer, CategoryPlayerWeapon, CategoryEnemy, CategoryEnemyWeapon}

// Tag is the category's name on the wire and in logs.
func (c Category) Tag() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryPlayerWeapon:
		return "player-weapon"
	case CategoryEnemy:
		return "enemy"
	case CategoryEnemyWeapon:
		return "enemy-weapon"
	}
	return ""
}

func (c Category) String() string {
	if c == CategoryNone {
		return "untagged"
	}
	return c.Tag()
}

// ContactMask is the set of categories this category wants contact reports for.
func (c Category) ContactMask() Category {
	switch c {
	case CategoryPlayer:
		return CategoryEnemy | CategoryEnemyWeapon
	case CategoryPlayerWeapon:
		return CategoryEnemy | CategoryEnemyWeapon
	case CategoryEnemy:
		return CategoryPlayer | CategoryPlayerWeapon
	case CategoryEnemyWeapon:
		return CategoryPlayer
	}
	return 0
}

// Reportable reports whether a contact between a and b is delivered: either
// side must list the other in its contact mask.
func Reportable(a, b Category) bool {
	return a&b.ContactMask() != 0 || b&a.ContactMask() != 0
}
