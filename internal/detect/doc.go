// Package detect finds accounts that do not follow back.
//
// Detection works on the raw export text: the followings document is diffed
// against the followers document line by line, profile links are extracted
// from the rendered diff, and the result is filtered to the configured
// domain and to links absent from the followings document as a whole.
//
// Extracting from the diff text (rather than computing a set difference of
// the two link lists) keeps results in the order the accounts appear in the
// export; the two approaches agree on which links are reported.
package detect
