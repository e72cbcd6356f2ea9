package supporting

func AddrOf[T any](value T) *T {
	return &value
}
