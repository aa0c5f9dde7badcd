package populator

// Accumulate exports accumulate for white-box tests.
var Accumulate = accumulate
