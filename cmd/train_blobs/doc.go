// Package main provides a demo program for training on synthetic Gaussian
// blobs. Two well-separated clusters are generated, so the perceptron rule
// converges to a perfect separating line for the default geometry.
package main
