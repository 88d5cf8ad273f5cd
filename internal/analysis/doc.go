// Package analysis measures and pins the behaviour of the NarrowWay ciphers:
// avalanche statistics over reproducible samples, Monte-Carlo chain digests,
// JSON known-answer vector files and HTML histogram reports.
package analysis
