// Package errors provides coded, actionable errors for the tips tooling.
//
// Every error carries a code from the registry (e.g. "E110") that fixes its
// category and short message. Call sites add detail, a fix suggestion and,
// for stylesheet problems, the source location:
//
//	err := errors.New("E110").
//	    WithLocation("tips.module.css", 12, 3).
//	    WithContext(lines).
//	    WithSuggestion("Close the comment with */")
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E110: Stylesheet could not be compiled
//	//
//	//   tips.module.css:12:3
//	//
//	//     11 │ .tipsText {
//	//   → 12 │   /* unterminated
//	//        │   ^
//	//
//	//   Hint: Close the comment with */
//
// # Categories
//
//   - config: tips.json loading and validation
//   - style: style module compilation and class maps
//   - export: publishing rendered output
//   - server: the HTTP host
//   - cli: command-line usage
package errors
