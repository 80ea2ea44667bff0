package cli

import (
	"errors"
	"strconv"
	"time"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
	"github.com/KylieKat17/kelvin-stardate/internal/stardate"
	"github.com/KylieKat17/kelvin-stardate/internal/ui"
	"github.com/KylieKat17/kelvin-stardate/internal/validate"
)

// earthToStardate converts one validated Y/M/D under the given mode and
// renders the result block. All mode fans out to every system at once.
func (a *App) earthToStardate(y, m, d int, mode stardate.Mode) error {
	dt, err := stardate.NewDate(y, m, d)
	if err != nil {
		return errcode.Newf(errcode.CodeMonth, "Invalid date %d-%d-%d", y, m, d)
	}

	if mode == stardate.All {
		nl, err := stardate.FromDate(dt, stardate.NoLeap)
		if err != nil {
			return err
		}
		gr, err := stardate.FromDate(dt, stardate.Gregorian)
		if err != nil {
			return err
		}
		a.renderer.AllStardates(dt, nl, gr, stardate.ToAstronomical(dt))
		return nil
	}

	if mode == stardate.Astronomical {
		a.renderer.Result(ui.Result{
			Mode:      mode,
			InputDate: dt,
			Stardate:  ui.FormatAstro(stardate.ToAstronomical(dt)),
		})
		return nil
	}

	k, err := stardate.FromDate(dt, mode)
	if err != nil {
		return err
	}
	a.renderer.Result(ui.Result{Mode: mode, InputDate: dt, Stardate: k.String()})
	return nil
}

// stardateToEarth converts one stardate string under the given mode and
// renders the result block. In all mode a failing system renders an
// error row while the others still print; in a single Kelvin mode an
// astronomical-looking input overrides the chosen mode.
func (a *App) stardateToEarth(sdStr string, mode stardate.Mode) error {
	sdStr, err := validate.StardateString(sdStr)
	if err != nil {
		return err
	}

	if mode == stardate.All {
		var nl, gr, astro *time.Time
		if k, err := stardate.ParseKelvin(sdStr); err == nil {
			if d, err := k.Date(stardate.NoLeap); err == nil {
				nl = &d
			}
			if d, err := k.Date(stardate.Gregorian); err == nil {
				gr = &d
			}
		}
		if f, err := strconv.ParseFloat(sdStr, 64); err == nil {
			if d, err := stardate.FromAstronomical(f); err == nil {
				astro = &d
			}
		}
		a.renderer.AllDates(sdStr, nl, gr, astro)
		return nil
	}

	if mode == stardate.Astronomical || validate.DetectStardateKind(sdStr) == validate.KindAstronomical {
		f, err := strconv.ParseFloat(sdStr, 64)
		if err != nil {
			return errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s'.", sdStr)
		}
		dt, err := stardate.FromAstronomical(f)
		if err != nil {
			return stardateRangeErr(sdStr, err)
		}
		a.renderer.Result(ui.Result{Mode: stardate.Astronomical, InputSD: sdStr, Date: dt})
		return nil
	}

	k, err := stardate.ParseKelvin(sdStr)
	if err != nil {
		return errcode.Newf(errcode.CodeStardate, "Invalid stardate '%s'.", sdStr)
	}
	dt, err := k.Date(mode)
	if err != nil {
		return stardateRangeErr(sdStr, err)
	}
	a.renderer.Result(ui.Result{Mode: mode, InputSD: sdStr, Date: dt})
	return nil
}

// stardateRangeErr keeps the stable E011 wording for out-of-range years.
// Other conversion errors pass through and print in the plain style.
func stardateRangeErr(sdStr string, err error) error {
	if errors.Is(err, stardate.ErrYearRange) {
		return errcode.Newf(errcode.CodeStardate,
			"Stardate '%s' is out of supported range (year must be 0001–9999).", sdStr)
	}
	return err
}
