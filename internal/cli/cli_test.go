package cli_test

import (
	"bytes"
	"context"
	"testing"

	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iota/internal/cli"
	"go.llib.dev/iota/internal/config"
)

var defaultConfig = config.Config{
	Type:      "int",
	Format:    "text",
	Separator: "\n",
	TTYLimit:  100,
	LogLevel:  "info",
}

func TestExecute(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		cfg    = testcase.LetValue(s, defaultConfig)
		stdout = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		stderr = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
	)
	act := func(t *testcase.T, args ...string) error {
		return cli.Execute(context.Background(), cfg.Get(t), args, stdout.Get(t), stderr.Get(t))
	}
	thenPrints := func(t *testcase.T, exp string, args ...string) {
		t.Helper()
		assert.NoError(t, act(t, args...))
		assert.Equal(t, exp, stdout.Get(t).String())
	}

	s.Describe("integers", func(s *testcase.Spec) {
		s.Test("a closed range", func(t *testcase.T) {
			thenPrints(t, "1\n2\n3\n4\n5\n", "1", "5")
		})

		s.Test("an infinite sequence with a limit", func(t *testcase.T) {
			thenPrints(t, "7\n8\n9\n", "--limit", "3", "7")
		})

		s.Test("skipping values", func(t *testcase.T) {
			thenPrints(t, "2\n3\n", "--skip", "2", "-n", "2", "0")
		})

		s.Test("skipping past the end", func(t *testcase.T) {
			thenPrints(t, "", "--skip", "10", "0", "3")
		})

		s.Test("a bound before the start makes an empty sequence", func(t *testcase.T) {
			thenPrints(t, "", "5", "1")
		})

		s.Test("negative numbers after a double dash", func(t *testcase.T) {
			thenPrints(t, "-3\n-2\n-1\n", "--", "-3", "-1")
		})

		s.Test("hexadecimal input", func(t *testcase.T) {
			thenPrints(t, "15\n16\n", "0xf", "0x10")
		})

		s.Test("until a value", func(t *testcase.T) {
			thenPrints(t, "1\n2\n3\n4\n", "--until", "5", "1")
		})

		s.Test("until the starting value", func(t *testcase.T) {
			thenPrints(t, "", "--until", "7", "7")
		})

		s.Test("until a value with a skip and a limit", func(t *testcase.T) {
			thenPrints(t, "3\n4\n", "--until", "10", "--skip", "2", "-n", "2", "1")
		})

		s.Test("until a value below the start", func(t *testcase.T) {
			thenPrints(t, "", "--until", "1", "5")
		})

		s.Test("until and TO together are rejected", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "--until", "5", "1", "3"))
		})

		s.Test("an until value out of the range of the type is rejected", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "int8", "--until", "200", "1"))
		})

		s.Test("a custom separator", func(t *testcase.T) {
			thenPrints(t, "1, 2, 3\n", "--separator", ", ", "1", "3")
		})

		s.Test("narrow unsigned types wrap around", func(t *testcase.T) {
			thenPrints(t, "254\n255\n0\n1\n", "-t", "uint8", "254", "1")
		})

		s.Test("values out of the range of the type are rejected", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "int8", "300"))
			assert.Empty(t, stdout.Get(t).String())
		})

		s.Test("negative values for unsigned types are rejected", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "uint16", "--", "-1", "5"))
		})

		s.Test("the largest uint64 values are accepted", func(t *testcase.T) {
			thenPrints(t, "18446744073709551614\n18446744073709551615\n",
				"-t", "uint64", "18446744073709551614", "18446744073709551615")
		})
	})

	s.Describe("other types", func(s *testcase.Spec) {
		s.Test("floats", func(t *testcase.T) {
			thenPrints(t, "0.5\n1.5\n2.5\n", "-t", "float64", "0.5", "2.5")
		})

		s.Test("a float bound that is never reached", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "float64", "0.5", "2"))
		})

		s.Test("NaN is rejected", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "float64", "NaN", "-n", "1"))
		})

		s.Test("runes", func(t *testcase.T) {
			thenPrints(t, "a\nb\nc\n", "-t", "rune", "a", "c")
		})

		s.Test("a rune must be a single character", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "rune", "ab"))
		})

		s.Test("dates", func(t *testcase.T) {
			thenPrints(t, "2024-02-28\n2024-02-29\n2024-03-01\n", "-t", "date", "2024-02-28", "2024-03-01")
		})

		s.Test("weekdays wrap around the week", func(t *testcase.T) {
			thenPrints(t, "Saturday\nSunday\nMonday\n", "-t", "weekday", "sat", "mon")
		})

		s.Test("semantic versions", func(t *testcase.T) {
			thenPrints(t, "1.2.3-rc.1\n1.2.3\n1.2.4\n", "-t", "semver", "1.2.3-rc.1", "1.2.4")
		})

		s.Test("weekdays until a day", func(t *testcase.T) {
			thenPrints(t, "Friday\nSaturday\nSunday\n", "-t", "weekday", "--until", "monday", "fri")
		})

		s.Test("semantic versions until a release", func(t *testcase.T) {
			thenPrints(t, "1.2.3\n1.2.4\n", "-t", "semver", "--until", "1.2.5", "1.2.3")
			stdout.Get(t).Reset()
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "semver", "--until", "1.3.0", "1.2.3"))
		})

		s.Test("a float bound that is never reached with until", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "float64", "--until", "2", "0.5"))
		})

		s.Test("a semantic version that is not a later patch release", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "semver", "1.2.3", "1.3.0"))
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-t", "semver", "1.2.3", "1.2.1"))
		})

		s.Test("an unknown type", func(t *testcase.T) {
			err := act(t, "-t", "complex128", "1")
			assert.ErrorIs(t, cli.ErrUsage, err)
			assert.ErrorIs(t, enum.ErrInvalid, err)
		})
	})

	s.Describe("formats", func(s *testcase.Spec) {
		s.Test("json", func(t *testcase.T) {
			thenPrints(t, "[1,2,3]\n", "-o", "json", "1", "3")
		})

		s.Test("json of text values", func(t *testcase.T) {
			thenPrints(t, `["2024-01-01","2024-01-02"]`+"\n", "-o", "json", "-t", "date", "2024-01-01", "2024-01-02")
			stdout.Get(t).Reset()
			thenPrints(t, `["x","y","z"]`+"\n", "-o", "json", "-t", "rune", "x", "z")
		})

		s.Test("json of an empty sequence", func(t *testcase.T) {
			thenPrints(t, "[]\n", "-o", "json", "3", "1")
		})

		s.Test("yaml", func(t *testcase.T) {
			thenPrints(t, "- 1\n- 2\n- 3\n", "-o", "yaml", "1", "3")
		})

		s.Test("yaml of weekdays", func(t *testcase.T) {
			thenPrints(t, "- Monday\n- Tuesday\n", "-o", "yaml", "-t", "weekday", "monday", "tuesday")
		})

		s.Test("an infinite sequence needs a limit", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUnbounded, act(t, "-o", "json", "1"))

			stdout.Get(t).Reset()
			thenPrints(t, "[5,6]\n", "-o", "json", "-n", "2", "5")
		})

		s.Test("an unknown format", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "-o", "xml", "1", "2"))
		})
	})

	s.Describe("configuration", func(s *testcase.Spec) {
		s.When("the config selects the type and the format", func(s *testcase.Spec) {
			cfg.Let(s, func(t *testcase.T) config.Config {
				c := defaultConfig
				c.Type = "weekday"
				c.Format = "text"
				c.Separator = " "
				return c
			})

			s.Then("they are used", func(t *testcase.T) {
				thenPrints(t, "Friday Saturday\n", "fri", "sat")
			})

			s.Then("flags override them", func(t *testcase.T) {
				thenPrints(t, "1-2\n", "-t", "int", "--separator", "-", "1", "2")
			})
		})
	})

	s.Describe("logging", func(s *testcase.Spec) {
		s.Test("errors are logged", func(t *testcase.T) {
			assert.Error(t, act(t))
			assert.Contains(t, stderr.Get(t).String(), `"level":"error"`)
			assert.Contains(t, stderr.Get(t).String(), "iota failed")
		})

		s.Test("the sequence is described on debug level", func(t *testcase.T) {
			assert.NoError(t, act(t, "--log-level", "debug", "-n", "1000", "0", "5000"))
			out := stderr.Get(t).String()
			assert.Contains(t, out, "sequence created")
			assert.Contains(t, out, `"path":"truncated"`)
			assert.Contains(t, out, `"tier":"random-access"`)
			assert.Contains(t, out, `"count":"1,000"`)
		})

		s.Test("a sequence with an until value is described as delimited", func(t *testcase.T) {
			assert.NoError(t, act(t, "--log-level", "debug", "-t", "weekday", "--until", "sun", "sat"))
			assert.Contains(t, stderr.Get(t).String(), `"path":"delimited"`)
		})

		s.Test("nothing is logged on info level when all goes well", func(t *testcase.T) {
			thenPrints(t, "1\n", "1", "1")
			assert.Empty(t, stderr.Get(t).String())
		})

		s.Test("a negative skip is a usage error", func(t *testcase.T) {
			assert.ErrorIs(t, cli.ErrUsage, act(t, "--skip", "-1", "1"))
		})
	})
}

func TestTypeNames(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every type is accepted by the configuration", func(t *testcase.T) {
		names := cli.TypeNames()
		assert.NotEmpty(t, names)
		for _, name := range names {
			c := defaultConfig
			c.Type = name
			assert.NoError(t, c.Validate())
		}
	})

	s.Test("the names are sorted", func(t *testcase.T) {
		names := cli.TypeNames()
		assert.Equal(t, "date", names[0])
		assert.Equal(t, "weekday", names[len(names)-1])
	})
}

func TestNewCommand(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the usage lists the types", func(t *testcase.T) {
		cmd := cli.NewCommand(defaultConfig)
		assert.Contains(t, cmd.Long, "semver")
		assert.NotNil(t, cmd.Flags().Lookup("limit"))
		assert.Equal(t, "n", cmd.Flags().Lookup("limit").Shorthand)
	})
}
