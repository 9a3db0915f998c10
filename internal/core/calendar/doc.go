// Package calendar implements the business calendar engine: classifying civil
// instants as working time, anchoring arbitrary start instants, and advancing
// by whole business days and business-hour minutes.
//
// Design choices:
//   - All arithmetic happens on civil instants (time.Time in the business
//     location); conversion to/from UTC happens only at the Calculate boundary.
//   - The working-hours Profile and the HolidaySet are injected into the
//     Calculator; nothing here reads ambient state, so every call is reentrant.
//   - The lunch-boundary snap in AdjustToWorkingTime (start inside the lunch
//     hour, or exactly at its end, pins to LunchStart:59:59.999) is a deliberate
//     policy: an exact lunch-boundary start counts as the end of the pre-lunch
//     segment. Do not "fix" it; callers rely on the observable results.
package calendar
