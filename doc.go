// Package exposure computes the client/stock exposure tables of an adviser
// dashboard from a spreadsheet of holdings.
//
// The pipeline is a single synchronous pass over the in-memory records:
//   - Loading: [Load] reads a .xlsx or .csv file, coercing maturity dates and
//     dropping the rows whose date cannot be parsed.
//   - Selection: [Filter] narrows the records to the chosen clients and stocks
//     and resolves which products, maturing in the chosen window, are assumed
//     to roll off.
//   - Aggregation: [Exposures] computes each stock's share of a client's total
//     exposure, currently and once the maturing products are gone.
//   - Timeline: [NewTimeline] sums the maturing amounts per stock and week into
//     a dense matrix.
//
// A [Dashboard] chains these steps into a [Report], recomputed from scratch on
// every [Selection]. Rendering lives in the renderer, chart and server packages.
package exposure
