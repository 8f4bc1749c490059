// Package pipeline renders content lines to HTML and assembles print documents.
//
// A document goes through these stages:
//   - Kind resolution: every line type is resolved before rendering starts
//   - Dispatch: Style and SectionStyle are compiled on a copy of the line
//   - Per-kind rendering: text, QR code, bar code, image and table
//   - Assembly: content is joined in input order and wrapped in the document
//     shell with the baseline stylesheet, the caller stylesheet and the
//     document id script
//
// Lines render concurrently. Input lines and options are never modified.
package pipeline
