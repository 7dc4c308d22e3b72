package xmlstring

// TypeMismatchError is returned by Sniff when its argument is not bytes-like.
// The value is the Go type name of the rejected argument.
type TypeMismatchError string

func (e TypeMismatchError) Error() string {
	return "isxml: argument must be bytes-like, not " + string(e)
}
