package ports

// Navigator receives the URL a browse controller commits. It is the
// framework hook that turns a rewritten location into a page load: the HTTP
// adapter answers with a redirect, tests record the calls.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(url string) {
	f(url)
}
