// Package segment splits a line of text into word tokens for whole-word
// deletion.
//
// A token is a word followed by whatever non-word characters trail it, so
// deleting the last token removes the last word together with the spaces and
// punctuation typed after it. Contractions ("don't"), namespaced names
// ("std:io") and grouped numbers ("3,000.50") stay in one token.
package segment
