// Package notify turns the store's filtered view into what the notification
// surfaces display.
//
// Summarizer implements state.Observer. On every refresh it builds a
// Notification whose Summary carries the total matched count, the text of the
// ten most recent matches, and the newest text as the headline, then hands it
// to a Presenter. When a full viewer is available the notification also
// carries Filter, Level and Clear actions and a View tap action; otherwise the
// summary is shown bare.
//
// The transient channel shows each recorded text through a Toaster using two
// alternating slots. A call cancels the toast its slot held two calls ago,
// never the one just shown. Toasters that fail or panic, for example because
// the display is not running yet, only lose that message.
package notify
