package common

import "fmt"

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (o Optional[T]) String() string {
	if !o.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", o.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}
