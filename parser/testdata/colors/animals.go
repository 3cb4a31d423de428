package colors

// Animal is a closed set of creatures.
// @strum(serialize_all:"snake", string, parse, values)
type Animal interface{ isAnimal() }

type Cat struct{}

func (Cat) isAnimal() {}

// Dog implements the marker through its pointer type only.
type Dog struct {
	Collar string
}

func (*Dog) isAnimal() {}
