package main

import (
	"fmt"
	"log"

	"github.com/indumath/indumath/linprog"
)

func main() {
	// Maximize profit 3x + 5y
	// Subject to: x <= 4, 2y <= 12, 3x + 2y <= 18, x,y >= 0
	model := linprog.Model{
		Maximize: true,
		ColCosts: []float64{3.0, 5.0},
		ColLower: []float64{0.0, 0.0},
	}
	model.AddLeRow([]float64{1.0, 0.0}, 4.0)
	model.AddLeRow([]float64{0.0, 2.0}, 12.0)
	model.AddLeRow([]float64{3.0, 2.0}, 18.0)

	solution, err := model.Solve()
	if err != nil {
		log.Fatal(err)
	}

	if solution.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", solution.ColValues[0], solution.ColValues[1])
		fmt.Printf("Profit = %.2f\n", solution.Objective)
	} else {
		fmt.Printf("Status: %s\n", solution.Status)
	}
}
