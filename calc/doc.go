// Package calc holds the closed-form industrial calculators: economic order
// quantity, the M/M/1 queue and the break-even point.
//
// Each calculator takes a parameter struct, validates it, and returns a
// result struct. Validation failures match ErrInvalidInput; the two domain
// rejections, an unstable queue and a price that does not cover variable
// cost, have their own sentinels.
package calc
