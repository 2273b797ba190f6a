// Package style resolves sparse style overrides against the built-in
// defaults and composes the document stylesheet.
//
// Every key of Options is optional. Resolve binds each one to a concrete
// value and Stylesheet interpolates the result into the base stylesheet
// template, appending any custom CSS after it.
package style
