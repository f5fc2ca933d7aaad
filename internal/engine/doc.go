// Package engine orchestrates a translation request.
//
// A call to Translate walks these steps and stops at the first that
// decides the outcome:
//
//  1. cache lookup on the raw input
//  2. classification, rejecting text not worth translating
//  3. preprocessing of naming-convention tokens into spaced words
//  4. selection of the strategies that can handle the text
//  5. the strategy chain, where the first strategy that changes the text
//     wins and its result is cached under the raw input
//
// When every strategy declines or fails the original text is echoed back
// with Success set to false.
package engine
