package main

import "flag"

import "github.com/neurlang/perceptron/datasets/logic"
import "github.com/neurlang/perceptron/learning"

func main() {

	gate := flag.String("gate", "and", "gate to learn: and, or")
	epochs := flag.Int("epochs", 10, "number of passes over the gate truth table")
	rate := flag.Float64("rate", 1, "learning rate")
	dstmodel := flag.String("dstmodel", "", "model destination .json file")
	flag.Parse()

	dataset := logic.And()
	if *gate == "or" {
		dataset = logic.Or()
	}

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
