package calculator

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestEvaluate_Success(t *testing.T) {
	res, err := Evaluate("2+3*4", 0)
	require.NoError(t, err)
	assert.Equal(t, "14", res)

	res, err = Evaluate(" 10 / 4 ", 0)
	require.NoError(t, err)
	assert.Equal(t, "2.5", res)
}

func TestEvaluate_InvalidExpression(t *testing.T) {
	for _, expr := range []string{"", "   ", "(2+3", "x + 1"} {
		_, err := Evaluate(expr, 0)
		assert.ErrorIs(t, err, ErrInvalidInput, "expression %q", expr)
	}
}

func TestEvaluate_TooLong(t *testing.T) {
	_, err := Evaluate("1+1+1+1", 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2023-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	d := date(t, "2000-02-29")
	assert.Equal(t, time.February, d.Month())
}

func TestBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       Period
	}{
		{"2023-02-28", "2023-03-01", Period{Days: 1}},
		{"2024-02-28", "2024-03-01", Period{Days: 2}},
		{"2000-01-31", "2000-03-01", Period{Months: 1, Days: 1}},
		{"1990-05-20", "2026-10-16", Period{Years: 36, Months: 4, Days: 26}},
		{"2026-10-16", "2026-10-16", Period{}},
		{"2026-10-16", "2026-09-20", Period{Days: -26}},
		{"2027-12-16", "2026-10-16", Period{Years: -1, Months: -2}},
	}
	for _, tc := range cases {
		got := Between(date(t, tc.start), date(t, tc.end))
		assert.Equal(t, tc.want, got, "%s -> %s", tc.start, tc.end)
	}
}

func TestAge(t *testing.T) {
	res := Age(date(t, "1990-05-20"), time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, "1990-05-20", res.DateOfBirth)
	assert.Equal(t, "36 years, 4 months, and 26 days", res.Age)
}

func TestBMI(t *testing.T) {
	res, err := BMI(70, 1.75)
	require.NoError(t, err)
	assert.Equal(t, 22.86, res.Score)
	assert.Equal(t, "Normal Weight", res.Category)

	cases := map[float64]string{
		50:  "Underweight",
		90:  "Overweight",
		120: "Obese",
	}
	for weight, category := range cases {
		res, err := BMI(weight, 1.75)
		require.NoError(t, err)
		assert.Equal(t, category, res.Category, "weight %v", weight)
	}
}

func TestBMI_InvalidInput(t *testing.T) {
	_, err := BMI(70, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BMI(70, -1.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BMI(0, 1.75)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var verr *ValidationError
	_, err = BMI(70, 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "height", verr.Field)
}

func TestEMI(t *testing.T) {
	res, err := EMI(100000, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 8791.59, res.MonthlyEMI)
	assert.InDelta(t, 105499.06, res.TotalAmountPaid, 0.011)
	assert.InDelta(t, 5499.06, res.TotalInterestPaid, 0.011)
	assert.Equal(t, 12, res.LoanTermMonths)
}

func TestEMI_ZeroRate(t *testing.T) {
	res, err := EMI(12000, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, res.MonthlyEMI)
	assert.Equal(t, 12000.0, res.TotalAmountPaid)
	assert.Equal(t, 0.0, res.TotalInterestPaid)
}

func TestEMI_InvalidInput(t *testing.T) {
	_, err := EMI(0, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = EMI(1000, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = EMI(1000, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEMI_LongTerms(t *testing.T) {
	cases := map[int]float64{
		101:  833.37,
		150:  833.33,
		1000: 833.33,
	}
	for years, want := range cases {
		res, err := EMI(100000, 10, years)
		require.NoError(t, err, "years %d", years)
		assert.Equal(t, years*12, res.LoanTermMonths)
		assert.Equal(t, want, res.MonthlyEMI, "years %d", years)
	}
}

func TestEMI_Overflow(t *testing.T) {
	_, err := EMI(100000, 1e6, 100000)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rate", verr.Field)
}

func TestCelsiusToFahrenheit(t *testing.T) {
	res := CelsiusToFahrenheit(100)
	assert.Equal(t, 212.0, res.Fahrenheit)
	assert.Equal(t, "(°C × 9/5) + 32 = °F", res.Formula)

	assert.Equal(t, -40.0, CelsiusToFahrenheit(-40).Fahrenheit)
}

func TestPasswordStrength(t *testing.T) {
	strong := PasswordStrength("Sup3r$ecret")
	assert.Equal(t, "5/5", strong.Score)
	assert.Equal(t, "Strong", strong.Strength)
	assert.Equal(t, "Great password!", strong.Message)
	assert.Empty(t, strong.Improvements)
	assert.Equal(t, 11, strong.Length)

	weak := PasswordStrength("abc")
	assert.Equal(t, "1/5", weak.Score)
	assert.Equal(t, "Weak", weak.Strength)
	assert.Empty(t, weak.Message)
	assert.Equal(t, []string{
		"Password is too short (minimum 8 characters required)",
		"Add at least one uppercase letter (A-Z)",
		"Add at least one number (0-9)",
		"Add at least one special character (e.g., ! @ # $)",
	}, weak.Improvements)

	moderate := PasswordStrength("Password1")
	assert.Equal(t, 4, moderate.Points)
	assert.Equal(t, "Moderate", moderate.Strength)
	assert.Equal(t, []string{"Add at least one special character (e.g., ! @ # $)"}, moderate.Improvements)
}

func terms(seq []*big.Int) []string {
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		out = append(out, v.String())
	}
	return out
}

func TestFibonacci(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "1", "2", "3"}, terms(Fibonacci(5, 0).Sequence))
	assert.Equal(t, []string{"0"}, terms(Fibonacci(1, 0).Sequence))

	res := Fibonacci(0, 0)
	assert.Nil(t, res.Sequence)
	assert.Equal(t, "n must be > 0", res.Error)

	assert.Equal(t, "n must be <= 10", Fibonacci(11, 10).Error)
	assert.NotEmpty(t, Fibonacci(DefaultFibonacciMax+1, 0).Error)
}

func TestFibonacci_BeyondInt64(t *testing.T) {
	seq := Fibonacci(101, 0).Sequence
	require.Len(t, seq, 101)
	assert.Equal(t, "7540113804746346429", seq[92].String())
	assert.Equal(t, "12200160415121876738", seq[93].String())
	assert.Equal(t, "354224848179261915075", seq[100].String())
}

func TestPalindrome(t *testing.T) {
	res := Palindrome("A man, a plan, a canal: Panama")
	assert.True(t, res.IsPalindrome)
	assert.Equal(t, "amanaplanacanalpanama", res.Processed)
	assert.Equal(t, "amanaplanacanalpanama", res.Reverse)
	assert.Equal(t, 21, res.Length)

	res = Palindrome("Hello")
	assert.False(t, res.IsPalindrome)
	assert.Equal(t, "olleh", res.Reverse)

	res = Palindrome("?!")
	assert.True(t, res.IsPalindrome)
	assert.Equal(t, 0, res.Length)
}

func TestCheckPrime(t *testing.T) {
	res, err := CheckPrime(17, 0)
	require.NoError(t, err)
	assert.True(t, res.IsPrime)
	assert.Equal(t, int64(19), res.NextPrime)

	res, err = CheckPrime(1, 0)
	require.NoError(t, err)
	assert.False(t, res.IsPrime)
	assert.Equal(t, int64(2), res.NextPrime)

	res, err = CheckPrime(-10, 0)
	require.NoError(t, err)
	assert.False(t, res.IsPrime)
	assert.Equal(t, int64(2), res.NextPrime)

	res, err = CheckPrime(24, 0)
	require.NoError(t, err)
	assert.False(t, res.IsPrime)
	assert.Equal(t, int64(29), res.NextPrime)

	_, err = CheckPrime(1000, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 97, 7919, 2147483647}
	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d", p)
	}
	for _, n := range []int64{-7, 0, 1, 4, 9, 91, 7917} {
		assert.False(t, IsPrime(n), "%d", n)
	}
}

func TestDateTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 16, 14, 5, 9, 0, loc)

	res := DateTime(now)
	assert.Equal(t, "2026-10-16T14:05:09", res.ISOTimestamp)
	assert.Equal(t, "2026-10-16", res.DateReadable)
	assert.Equal(t, "02:05:09 PM", res.TimeReadable)
	assert.Equal(t, "FRIDAY", res.DayOfWeek)
	assert.Equal(t, 289, res.DayOfYear)
	assert.Equal(t, "OCTOBER", res.Month)
	assert.Equal(t, 2026, res.Year)
	assert.Equal(t, "IST", res.Timezone)

	assert.Equal(t, "UTC", DateTime(now.UTC()).Timezone)
}
