// Package strategy implements the translation resolvers tried by the engine.
//
// Local resolves from the in-memory dictionary and never fails. The online
// strategies (MyMemory, Google, LibreTranslate, GPT and Gemini) each make a
// single outbound call per Translate. They share spacing between calls, a
// rolling 24 hour request quota, a circuit breaker and a per-call timeout.
// On any failure an online strategy returns the input text together with a
// non-nil error so the caller can move on to the next strategy.
package strategy
