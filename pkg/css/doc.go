// Package css provides fluent builders that turn chained calls into utility
// class names or inline style declarations.
//
// Every concern (margin, display, opacity, ...) is a static table of tokens.
// A Builder accumulates rules against that table and renders them on demand:
//
//	css.Margin(css.S2).FromTop().OnTablet().ToClass() // "md-mt-2"
//	css.Padding(css.S0).OnX().ToStyle()               // "padding-left: 0; padding-right: 0"
//	css.Opacity(css.Opacity50).OnTablet().ToClass()   // "opacity-md-50"
//
// Rendering is pure and never fails: a value without a class mapping simply
// contributes nothing to ToClass.
package css
