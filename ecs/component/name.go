package component

type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

// Parent attaches an entity to the named entity's transform.
type Parent struct {
	Name string
}

var ParentComponent = NewComponent[Parent]()
