// Package scorefile reads and writes the DMST text format: a header
// naming the number of variables and the maximum subset size scored,
// followed by that many local scores listed in colexicographic order.
//
// The format is intentionally narrow (unified "subset_scores" in
// "colex_order" only, no lex or free orderings, no split clique/separator
// sections) since every consumer in this module — the dp engine, the
// samplers, the enumerate package — only ever needs one score per subset
// addressed the same way pairtable and subsetiter address it.
package scorefile
