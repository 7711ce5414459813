package main

import "flag"

import "github.com/neurlang/perceptron/datasets/blobs"
import "github.com/neurlang/perceptron/learning"

func main() {

	n := flag.Int("n", 500, "samples to generate per class")
	seed := flag.Uint64("seed", 1, "seed for the blob generator")
	epochs := flag.Int("epochs", 20, "number of passes over the blobs")
	rate := flag.Float64("rate", 0.1, "learning rate")
	dstmodel := flag.String("dstmodel", "", "model destination .json file")
	flag.Parse()

	dataset := blobs.Two(*n, *seed)

	var h learning.HyperParameters
	h.LearningRate = *rate
	h.Epochs = *epochs
	h.SetLogger("training.txt")

	p, err := h.Training(dataset)
	if err != nil {
		println(err.Error())
		return
	}

	success, err := learning.Evaluate(p, dataset)
	if err != nil {
		println(err.Error())
		return
	}
	println("[success rate]", success, "%")

	if *dstmodel != "" {
		if err := p.WriteWeightsToFile(*dstmodel); err != nil {
			println(err.Error())
		}
	}
}
