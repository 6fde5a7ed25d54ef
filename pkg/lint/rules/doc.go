// Package rules provides the built-in prose rules.
//
// Rules are grouped by what they catch:
//   - clarity: weasel words, weakening adverbs, "so" and "there is/are" openers, wordy phrases
//   - voice: passive voice and forms of "to be" (E-Prime)
//   - style: cliches
//   - typo: lexical illusions (a repeated word)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/writegood/pkg/lint/rules"
//
// Every word table is immutable package data compiled into a matcher once at
// package initialization.
package rules
