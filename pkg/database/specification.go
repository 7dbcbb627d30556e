package database

type Specification[O any] interface {
	Create() (Database[O], error)
}
