/*
Package numeric provides the scalar helpers exposed by the Digit plugin.

Every function is pure and total over float64. Inputs are never validated:
NaN and ±Inf produced by the underlying arithmetic are propagated to the caller
unchanged, so the usual IEEE-754 rules decide the outcome of edge cases such as
an empty Average or a negative Sqrt.

# Rounding

Round, Floor and Ceil round toward nearest (ties toward +Inf), -Inf and +Inf.
KeepBits rounds to a fixed number of fractional digits using the exact binary
value of its input, so 1.005 keeps two digits as 1 rather than 1.01.
*/
package numeric
