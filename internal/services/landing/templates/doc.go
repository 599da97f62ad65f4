// Package templates holds the templ components that render landing pages.
package templates
