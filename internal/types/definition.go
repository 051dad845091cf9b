package types

// DefinitionKind discriminates the four flavours of type definition.
type DefinitionKind int

const (
	DefClass DefinitionKind = iota
	DefEnum
	DefProtocol
	DefValueType
)

func (k DefinitionKind) String() string {
	switch k {
	case DefClass:
		return "class"
	case DefEnum:
		return "enum"
	case DefProtocol:
		return "protocol"
	case DefValueType:
		return "value type"
	}
	return "unknown"
}

// AccessLevel is the visibility classification of a declaration.
type AccessLevel int

const (
	AccessPrivate AccessLevel = iota
	AccessProtected
	AccessPublic
)

func (a AccessLevel) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessPublic:
		return "public"
	}
	return "unknown"
}

// GenericParameter declares one generic variable of a definition or
// function, together with its constraint.
type GenericParameter struct {
	Name       string
	Constraint Type
}

// Property is a stored instance property of a class or value type. Mutable
// properties participate in the mutation check.
type Property struct {
	Name    string
	Type    Type
	Mutable bool
	Access  AccessLevel
}

// EnumValue is one named value of an enum.
type EnumValue struct {
	Name          string
	Documentation string
}

// TypeDefinition is the analyzed declaration of a class, enum, protocol or
// value type. Definitions live in a Package's arena and are referenced by
// Handle everywhere else.
type TypeDefinition struct {
	Kind          DefinitionKind
	Name          string
	Documentation string
	Exported      bool

	Generics  []GenericParameter
	Protocols []Type // conformances, in declared order

	Methods      []*Function
	TypeMethods  []*Function
	Initializers []*Function
	Properties   []Property

	// Superclass is set for classes with a superclass. Nil otherwise.
	Superclass *Handle
	// Sealed classes permit static dispatch of all their methods.
	Sealed bool

	// Values is the ordered value set of an enum.
	Values []EnumValue
}

// Method returns the instance method with the given name, or nil.
func (d *TypeDefinition) Method(name string) *Function {
	for _, fn := range d.Methods {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// TypeMethod returns the type-level method with the given name, or nil.
func (d *TypeDefinition) TypeMethod(name string) *Function {
	for _, fn := range d.TypeMethods {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Initializer returns the initializer with the given name, or nil.
func (d *TypeDefinition) Initializer(name string) *Function {
	for _, fn := range d.Initializers {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Property returns the stored property with the given name, or nil.
func (d *TypeDefinition) Property(name string) *Property {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i]
		}
	}
	return nil
}

// MethodIndex returns the position of name in the method list, used as the
// witness-table slot for protocol dispatch. Returns -1 when absent.
func (d *TypeDefinition) MethodIndex(name string) int {
	for i, fn := range d.Methods {
		if fn.Name == name {
			return i
		}
	}
	return -1
}
