// Package main provides a demo program for training a logic gate classifier.
// This example shows how the perceptron rule learns the linearly separable
// AND and OR truth tables in a handful of epochs.
package main
