package model

type WithID[T ~string] interface {
	ID() T
}

type WithName interface {
	Name() string
}
