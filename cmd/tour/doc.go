// Command tour lists, runs and checks the language lessons under examples/.
//
// Every lesson is also a standalone program (go run ./examples/<name>/main). tour
// gathers them in one place so they can be browsed and their transcripts pinned.
//
// Usage
//
//	tour [-config file] <command> [flags] [args]
//
// Commands
//
//   - list [-o text|yaml]: print lesson names and titles in reading order.
//   - run [-all] [lesson...]: print lesson transcripts to stdout. With more than one
//     lesson each transcript is preceded by a "== name ==" header. Without names the
//     lessons from the configuration are run.
//   - notes [-html] <lesson>: print the lesson's Markdown notes, or HTML.
//   - check [-update] <lesson> <golden>: compare the transcript with a golden file and
//     print a unified diff on mismatch. -update rewrites the golden file atomically.
//
// Configuration
//
// Settings come from ./.env, then the YAML file named by -config or TOUR_CONFIG,
// then the TOUR_ENV, TOUR_DEBUG, TOUR_COLOR, TOUR_LESSONS and TOUR_NOTES_FORMAT
// environment variables:
//
//	env: local
//	debug: false
//	color: true
//	lessons: [testcaselist, functions]
//	notes_format: markdown
//
// Exit codes
//
// 0 on success, 1 when a lesson, the configuration or a file operation fails, 2 on
// usage errors including unknown lesson names.
package main
