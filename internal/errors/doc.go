// Package errors provides structured, actionable error messages for the
// marquee CLI.
//
// Every error the CLI reports carries a code from the registry:
//   - E1xx: project and page configuration (E15x: CLI usage)
//   - E2xx: mounting into the host template
//   - E3xx: building the output directory
//   - E4xx: publishing to S3
//
// # Usage
//
//	err := errors.New(errors.CodePageInvalid).
//	    WithLocationFromError("movie.yaml", data, parseErr).
//	    Wrap(parseErr)
//
//	errors.PrintError(err)
//	// Output:
//	// ERROR E104: Invalid page config
//	//
//	//   movie.yaml:3
//	//
//	//        1 │ title: The Witcher
//	//        2 │ header:
//	//   →    3 │   logo: [
//	//
//	//   Hint: Keys are case sensitive: fontColor, backgroundColor, subColor.
package errors
