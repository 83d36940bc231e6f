package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chronosdb/chronos"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "return-type function input-type [timezone]",
		Short: "Resolve the output type of a function invocation",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  returnType}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "apply function input-type value...",
		Short: "Run a function over a column of values",
		Args:  cobra.MinimumNArgs(3),
		RunE:  apply}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "monotonicity function input-type left right",
		Short: "Ask for the planner-facing monotonicity verdict on [left, right]",
		Long: "Prints the verdict the planner would use to decide whether a range\n" +
			"predicate on the function's output can become an index range scan on\n" +
			"the raw input column. Use '-' for a missing bound.",
		Args: cobra.ExactArgs(4),
		RunE: monotonicity}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "list",
		Short: "List the transforms this binary ships",
		RunE:  list}
	root.AddCommand(cmd)
}

func lookup(name string) (registryEntry, error) {
	e, ok := registry[name]
	if !ok {
		return registryEntry{}, errors.Errorf("unknown function %q (try 'chrono-fn list')", name)
	}
	return e, nil
}

func returnType(cmd *cobra.Command, args []string) error {
	e, err := lookup(args[0])
	if err != nil {
		return err
	}
	typ, err := parseType(args[1])
	if err != nil {
		return err
	}

	fnArgs := []chronos.Argument{chronos.TemporalArg(typ)}
	if len(args) == 3 {
		fnArgs = append(fnArgs, chronos.ConstStringArg(args[2]))
	}

	if err := e.check(fnArgs); err != nil {
		return err
	}
	ret, err := e.resolve(fnArgs)
	if err != nil {
		return err
	}
	if ret.Category == chronos.CatNumber {
		fmt.Fprintln(cmd.OutOrStdout(), "Number")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), ret.Temporal.Name())
	return nil
}

func apply(cmd *cobra.Command, args []string) error {
	e, err := lookup(args[0])
	if err != nil {
		return err
	}
	typ, err := parseType(args[1])
	if err != nil {
		return err
	}
	env, err := chronos.NewEnv(sessionTimezone(cmd))
	if err != nil {
		return err
	}

	fnArgs := []chronos.Argument{chronos.TemporalArg(typ)}
	if err := e.check(fnArgs); err != nil {
		return err
	}

	in, err := parseBatch(typ, args[2:])
	if err != nil {
		return err
	}
	out, err := e.apply(in, env)
	if err != nil {
		return errors.Wrapf(err, "apply %s", args[0])
	}
	for _, v := range out {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func monotonicity(cmd *cobra.Command, args []string) error {
	e, err := lookup(args[0])
	if err != nil {
		return err
	}
	typ, err := parseType(args[1])
	if err != nil {
		return err
	}
	env, err := chronos.NewEnv(sessionTimezone(cmd))
	if err != nil {
		return err
	}

	iv := chronos.Interval{}
	if iv.Left, err = parseBound(typ, args[2]); err != nil {
		return errors.Wrap(err, "left bound")
	}
	if iv.Right, err = parseBound(typ, args[3]); err != nil {
		return errors.Wrap(err, "right bound")
	}

	fmt.Fprintln(cmd.OutOrStdout(), e.mono(typ, iv, env).String())
	return nil
}

func list(cmd *cobra.Command, args []string) error {
	for name := range registry {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// parseType accepts the engine's type spellings: Date, DateTime,
// DateTime('Asia/Istanbul'), DateTime64(3), DateTime64(3, 'UTC').
func parseType(s string) (chronos.Type, error) {
	switch {
	case s == "Date":
		return chronos.DateType(), nil
	case s == "DateTime":
		return chronos.DateTimeType(""), nil
	case strings.HasPrefix(s, "DateTime64(") && strings.HasSuffix(s, ")"):
		inner := s[len("DateTime64(") : len(s)-1]
		scalePart, zone := inner, ""
		if i := strings.IndexByte(inner, ','); i >= 0 {
			scalePart = strings.TrimSpace(inner[:i])
			zone = strings.Trim(strings.TrimSpace(inner[i+1:]), "'")
		}
		scale, err := strconv.ParseUint(scalePart, 10, 8)
		if err != nil {
			return chronos.Type{}, errors.Wrapf(err, "bad DateTime64 scale %q", scalePart)
		}
		return chronos.DateTime64Type(uint8(scale), zone)
	case strings.HasPrefix(s, "DateTime(") && strings.HasSuffix(s, ")"):
		zone := strings.Trim(s[len("DateTime("):len(s)-1], "'")
		return chronos.DateTimeType(zone), nil
	default:
		return chronos.Type{}, errors.Errorf("cannot parse type %q", s)
	}
}

func parseBatch(typ chronos.Type, values []string) (chronos.Batch, error) {
	switch typ.Kind {
	case chronos.Date:
		days := make([]uint16, len(values))
		for i, s := range values {
			d, err := parseDay(s)
			if err != nil {
				return nil, err
			}
			days[i] = d
		}
		return chronos.NewDates(days), nil
	case chronos.DateTime:
		secs := make([]uint32, len(values))
		for i, s := range values {
			sec, err := parseSeconds(s)
			if err != nil {
				return nil, err
			}
			secs[i] = sec
		}
		return chronos.NewDateTimes(secs, typ.Zone), nil
	default:
		raw := make([]int64, len(values))
		for i, s := range values {
			r, err := parseScaled(s, typ.Scale)
			if err != nil {
				return nil, err
			}
			raw[i] = r
		}
		return chronos.NewDateTime64s(raw, typ.Scale, typ.Zone)
	}
}

// parseBound decodes one interval boundary into the column's raw
// representation; "-" means the bound is absent.
func parseBound(typ chronos.Type, s string) (*int64, error) {
	if s == "-" {
		return nil, nil
	}
	switch typ.Kind {
	case chronos.Date:
		d, err := parseDay(s)
		if err != nil {
			return nil, err
		}
		return chronos.Bound(int64(d)), nil
	case chronos.DateTime:
		sec, err := parseSeconds(s)
		if err != nil {
			return nil, err
		}
		return chronos.Bound(int64(sec)), nil
	default:
		r, err := parseScaled(s, typ.Scale)
		if err != nil {
			return nil, err
		}
		return chronos.Bound(r), nil
	}
}

func parseDay(s string) (uint16, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return uint16(n), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse date %q", s)
	}
	return uint16(t.Unix() / 86400), nil
}

func parseSeconds(s string) (uint32, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse datetime %q", s)
	}
	return uint32(t.Unix()), nil
}

// parseScaled turns a decimal seconds literal ("1610236800.123") into the
// scaled raw representation, rejecting precision the scale cannot hold.
func parseScaled(s string, scale uint8) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse DateTime64 literal %q", s)
	}
	shifted := d.Shift(int32(scale))
	if !shifted.IsInteger() {
		return 0, errors.Errorf("literal %q has more fractional digits than scale %d", s, scale)
	}
	return shifted.IntPart(), nil
}
