// Package main provides the entry point for the ig-tools CLI.
//
// igtools compares the followers and followings pages of an Instagram data
// export, reports the accounts that do not follow back, and opens their
// profiles in the default browser in timed batches.
//
// Usage:
//
//	igtools detect -f followers.html -g followings.html
//	igtools detect -f followers.html -g followings.html --dry-run --markdown
//
// See --help for all available options.
package main

// main is the entry point for igtools.
func main() {
	Execute()
}
