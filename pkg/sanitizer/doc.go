// Package sanitizer holds the small string normalizers applied to user input
// before it is checked by validation rules: stripping the spaces and dashes
// people type into phone and card numbers, trimming, case folding.
//
// Apply and Compose chain transforms into pipelines:
//
//	digitsOnly := sanitizer.Compose(
//	    sanitizer.RemoveWhitespace,
//	    sanitizer.RemoveChars("-"),
//	)
//	digitsOnly(" 4111-1111 1111 1111 ") // "4111111111111111"
package sanitizer
