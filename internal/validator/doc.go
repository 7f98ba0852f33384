// Package validator checks a Team against the capabilities of its deploy
// targets before anything is written.
//
// Validation is informational: every non-empty Team section a target
// cannot represent becomes a warning naming the target and feature, and
// the deploy proceeds with that section skipped. [Reporter] renders a
// [Result] as colorized text or JSON.
//
//	res := validator.Validate(t, []string{"claude", "gemini"}, registry.Capabilities)
//	_ = validator.NewReporter(os.Stdout, validator.FormatText).Report(res)
package validator
