// Package nquad is your in-memory toolkit for numerical integration of
// one-dimensional functions — composite Newton-Cotes quadrature, from
// classic textbook rules to arbitrary generated coefficient families.
//
// 🚀 What is nquad?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Quadrature rules: midpoint, trapezoid, Simpson, Simpson 3/8, Boole, Milne
//		• Rule generator: build any open/closed Newton-Cotes rule from a coefficient vector
//		• Composite driver: partition [a,b] into n panels and sum a rule over each
//		• Accuracy harness: convergence sweeps, observed-order estimation, tolerance search
//
// ✨ Why choose nquad?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed left-to-right summation, reproducible to the bit
//   - Pure values – rules are immutable, safe to share across goroutines
//   - Honest numerics – NaN/Inf from the integrand propagate, never masked
//
// Under the hood, everything is organized under two subpackages:
//
//	quad/     — Rule values, NewRule generator, Integrate composite driver, built-in catalog
//	accuracy/ — convergence sweeps & error reports over known integrals
//
// Quick sketch:
//
//	    a ──┬──┬──┬──┬── b        Integrate(f, a, b, 4, quad.Simpson)
//	        └ rule applied to each panel, panel results summed left→right
//
// Dive into README.md and examples/ for full walkthroughs, and the quad
// package docs for the exact point-placement and normalization contract.
//
//	go get github.com/katalvlaran/nquad/quad
package nquad
