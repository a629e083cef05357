// Package converters adapts core.Graph to gonum's graph model so gonum's
// encoders and algorithms can run over an affiliation network.
//
// ToGonum copies every vertex into a gonum node and every edge into a
// simple.Edge. Gonum IDs are assigned 0..n-1 in sorted vertex order, so
// the same core.Graph always converts to the same gonum graph. Each node
// keeps its string ID as its DOT ID and its kind as a DOT attribute.
//
// Usage
//
//	u, err := converters.ToGonum(g, converters.WithNodeAttributes(attrs))
//	b, err := dot.Marshal(u, "affnet", "", "  ")
package converters
