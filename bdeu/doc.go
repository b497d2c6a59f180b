// Package bdeu reads categorical sample data and computes BDeu (Bayesian
// Dirichlet equivalent uniform) local scores for every variable subset up
// to a given size, producing a scorefile.Scores ready to feed a dp.Engine
// or write out as a DMST score file.
package bdeu
