// Package plan contains the business-plan core: prompt assembly from a
// BusinessProfile, normalization and sectioning of raw model output, and the
// flat-text export rendering. Everything here is a pure transformation with no
// I/O; all functions are safe for concurrent use.
package plan

// SectionTitles is the fixed catalog of section names a generated plan is
// expected to contain, in the order they are requested from the model.
var SectionTitles = []string{
	"Executive Summary",
	"Company Description",
	"Market Analysis",
	"Organization & Management",
	"Products or Services",
	"Marketing & Sales Strategy",
	"Financial Projections",
	"Risk Analysis",
	"Implementation Timeline",
	"Appendices",
}

// FallbackTitle is used for the single catch-all section produced when no
// catalog title is recognized in the model output.
const FallbackTitle = "Business Plan"
