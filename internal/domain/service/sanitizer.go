package service

// TextSanitizer strips markup from user-supplied free text before it is sent upstream.
type TextSanitizer interface {
	Sanitize(text string) string
}
