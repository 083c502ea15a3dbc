package room

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
	TypeFamily Type = "family"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeFamily:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}
