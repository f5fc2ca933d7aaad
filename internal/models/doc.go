// Package models lists the OpenAI chat models that the GPT translation
// strategy can be configured with.
package models
