package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TimeUtilsTestSuite struct {
	suite.Suite
}

func TestTimeUtils(t *testing.T) {
	suite.Run(t, new(TimeUtilsTestSuite))
}

func (s *TimeUtilsTestSuite) TestParseUserTime_RFC3339() {
	parsed, err := ParseUserTime("2026-03-15T10:30:00Z", false)
	s.NoError(err)
	s.Equal(time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC), parsed)
}

func (s *TimeUtilsTestSuite) TestParseUserTime_DateOnly() {
	parsed, err := ParseUserTime("2026-03-15", false)
	s.NoError(err)
	s.Equal(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func (s *TimeUtilsTestSuite) TestParseUserTime_DateOnlyEndTime() {
	parsed, err := ParseUserTime("2026-03-15", true)
	s.NoError(err)
	s.Equal(time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC), parsed)
}

func (s *TimeUtilsTestSuite) TestParseUserTime_Invalid() {
	_, err := ParseUserTime("15/03/2026", false)
	s.Error(err)
}

func (s *TimeUtilsTestSuite) TestParseMonthYear() {
	parsed, err := ParseMonthYear("2026-03")
	s.NoError(err)
	s.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseMonthYear("March 2026")
	s.Error(err)
}

func (s *TimeUtilsTestSuite) TestMonthYearRoundTrip() {
	s.Equal("2026-03", MonthYear(time.Date(2026, time.March, 28, 12, 0, 0, 0, time.UTC)))
}

func (s *TimeUtilsTestSuite) TestMonthLabel() {
	s.Equal("Mar", MonthLabel("2026-03"))
	s.Equal("Dec", MonthLabel("2025-12"))
	// Unknown codes pass through unchanged.
	s.Equal("2026-13", MonthLabel("2026-13"))
	s.Equal("bogus", MonthLabel("bogus"))
}
