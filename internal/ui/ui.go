// Package ui renders computed charts for the terminal with lipgloss.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astrolabe/internal/aspects"
	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/humandesign"
	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
	"github.com/papapumpkin/astrolabe/internal/zodiac"
)

// InsufficientData is shown in place of a Zi Wei chart whose birth date
// lies outside the lunar calendar table.
const InsufficientData = "insufficient data for this date"

// maxAspects limits the aspect list of the natal view.
const maxAspects = 15

// Printer writes styled chart views to a writer.
type Printer struct {
	w io.Writer
	s styles
}

// New returns a Printer for w. Colors are emitted only when w is a
// terminal that supports them.
func New(w io.Writer) *Printer {
	return &Printer{w: w, s: newStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) println(a ...string) {
	fmt.Fprintln(p.w, strings.Join(a, ""))
}

func (p *Printer) field(label, value string) string {
	return p.s.label.Render(label+": ") + p.s.value.Render(value)
}

// Natal renders the full chart: placements, angles, houses, aspects and
// the distribution, followed by the Human Design and Zi Wei views.
func (p *Printer) Natal(c *natal.Chart) {
	in := c.Input
	title := "Natal chart"
	if in.Name != "" {
		title += " · " + in.Name
	}
	p.println(p.s.title.Render(title))
	p.println(p.field("Born", fmt.Sprintf("%s %s (UTC%+g)", in.Date, in.Time, in.TZOffset)),
		"  ", p.field("At", fmt.Sprintf("%.2f, %.2f", in.Latitude, in.Longitude)))
	p.println(p.field("JD", strconv.FormatFloat(c.JD, 'f', 5, 64)),
		"  ", p.field("Obliquity", fmt.Sprintf("%.4f°", c.Obliquity)))

	p.println(p.s.section.Render("Planets"))
	for _, pl := range c.Placements {
		retro := ""
		if pl.Retrograde {
			retro = " " + p.s.danger.Render(iconRetrograde)
		}
		p.println(p.s.cell.Render(p.s.label.Render(string(pl.Body))),
			p.s.value.Render(zodiac.Format(pl.Longitude)), retro,
			p.s.muted.Render(fmt.Sprintf("  house %d", pl.House)))
	}

	p.Houses(c.Houses)
	p.Aspects(c.Aspects, maxAspects)
	p.distribution(c)
	p.HumanDesign(c.HumanDesign)
	p.ZiWei(c.ZiWei, c.Decades)
}

// Houses renders the angles and the twelve cusps.
func (p *Printer) Houses(h houses.Houses) {
	p.println(p.s.section.Render("Houses (" + h.System.String() + ")"))
	p.println(p.field("ASC", p.s.accent.Render(zodiac.Format(h.Asc))),
		"  ", p.field("MC", p.s.accent.Render(zodiac.Format(h.MC))))
	for i, c := range h.Cusps {
		p.println(p.s.cell.Render(p.s.label.Render("House "+strconv.Itoa(i+1))), p.s.value.Render(zodiac.Format(c)))
	}
	if !h.Converged {
		p.println(p.s.danger.Render("warning: Placidus cusps did not converge"))
	}
	if h.Fallback {
		p.println(p.s.muted.Render("Placidus cusps unusable at this latitude; equal houses used"))
	}
}

// Aspects renders at most limit aspects, tightest first. A limit below 1
// shows all of them.
func (p *Printer) Aspects(as []aspects.Aspect, limit int) {
	sorted := append([]aspects.Aspect(nil), as...)
	aspects.SortByOrb(sorted)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	p.println(p.s.section.Render("Aspects"))
	if len(sorted) == 0 {
		p.println(p.s.muted.Render("none"))
		return
	}
	for _, a := range sorted {
		style := p.s.success
		switch a.Type {
		case aspects.Square, aspects.Opposition:
			style = p.s.danger
		case aspects.Conjunction:
			style = p.s.accent
		}
		p.println(p.s.cell.Render(p.s.value.Render(string(a.A))),
			p.s.cell.Render(style.Render(a.Type.Name)),
			p.s.cell.Render(p.s.value.Render(string(a.B))),
			p.s.muted.Render(fmt.Sprintf("orb %.2f°", a.Orb)))
	}
}

func (p *Printer) distribution(c *natal.Chart) {
	d := c.Distribution
	p.println(p.s.section.Render("Distribution"))
	p.println(p.field("East/West", fmt.Sprintf("%d/%d", d.Hemispheres.East, d.Hemispheres.West)),
		"  ", p.field("North/South", fmt.Sprintf("%d/%d", d.Hemispheres.North, d.Hemispheres.South)))
	p.println(p.field("Quadrants", fmt.Sprintf("%d %d %d %d", d.Quadrants[0], d.Quadrants[1], d.Quadrants[2], d.Quadrants[3])))

	var elems, mods []string
	for _, e := range []zodiac.Element{zodiac.Fire, zodiac.Earth, zodiac.Air, zodiac.Water} {
		elems = append(elems, fmt.Sprintf("%s %d", e, d.Balance.Elements[e]))
	}
	for _, m := range []zodiac.Modality{zodiac.Cardinal, zodiac.Fixed, zodiac.Mutable} {
		mods = append(mods, fmt.Sprintf("%s %d", m, d.Balance.Modalities[m]))
	}
	p.println(p.field("Elements", strings.Join(elems, ", ")))
	p.println(p.field("Modalities", strings.Join(mods, ", ")))
}

// HumanDesign renders the bodygraph summary.
func (p *Printer) HumanDesign(hd humandesign.Chart) {
	p.println(p.s.section.Render("Human Design"))
	p.println(p.field("Type", p.s.accent.Render(string(hd.Type))))
	p.println(p.field("Authority", string(hd.Authority)))
	p.println(p.field("Profile", hd.Profile+" "+hd.ProfileName))
	p.println(p.field("Definition", string(hd.Definition)))
	p.println(p.field("Cross", hd.Cross.Name))

	centers := make([]string, len(hd.Centers))
	for i, c := range hd.Centers {
		centers[i] = string(c)
	}
	channels := make([]string, len(hd.ActiveChannels))
	for i, ch := range hd.ActiveChannels {
		channels[i] = ch.String()
	}
	p.println(p.field("Defined centers", orNone(centers)))
	p.println(p.field("Channels", orNone(channels)))

	rows := []string{p.s.muted.Render(fmt.Sprintf("%-10s %-9s %-9s", "", "Design", "Personality"))}
	for i := range hd.Personality {
		pa, da := hd.Personality[i], hd.Design[i]
		rows = append(rows, fmt.Sprintf("%-10s %-9s %-9s", pa.Body,
			fmt.Sprintf("%d.%d", da.Gate, da.Line), fmt.Sprintf("%d.%d", pa.Gate, pa.Line)))
	}
	p.println(p.s.box.Render(strings.Join(rows, "\n")))
	if !hd.DesignConverged {
		p.println(p.s.danger.Render("warning: Design instant did not converge"))
	}
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// ZiWei renders the twelve palaces and, when given, the decade periods.
// A nil chart renders InsufficientData.
func (p *Printer) ZiWei(c *ziwei.Chart, decades []ziwei.Decade) {
	p.println(p.s.section.Render("Zi Wei Dou Shu"))
	if c == nil {
		p.println(p.s.muted.Render(InsufficientData))
		return
	}
	leap := ""
	if c.Lunar.Leap {
		leap = "閏"
	}
	p.println(p.field("Lunar", fmt.Sprintf("%s年 %s%d月 %d日 %s時",
		c.YearName(), leap, c.Lunar.Month, c.Lunar.Day, ziwei.Branches[c.HourBranch])))
	p.println(p.field("Bureau", c.BureauName))

	decadeOf := make(map[int]ziwei.Decade, len(decades))
	for _, d := range decades {
		decadeOf[d.Palace] = d
	}

	cells := make([]string, 0, 12)
	for _, pal := range c.Palaces {
		var b strings.Builder
		head := pal.StemBranch() + " " + pal.Name
		if pal.IsMing {
			head += " " + iconMing
		}
		if pal.IsShen {
			head += " " + iconShen
		}
		b.WriteString(p.s.accent.Render(head))
		for _, s := range pal.Stars {
			b.WriteString("\n")
			switch s.Kind {
			case ziwei.Major:
				b.WriteString(p.s.major.Render(s.Name))
			case ziwei.Ominous:
				b.WriteString(p.s.danger.Render(s.Name))
			default:
				b.WriteString(p.s.success.Render(s.Name))
			}
		}
		if d, ok := decadeOf[pal.Index]; ok {
			b.WriteString("\n" + p.s.muted.Render(fmt.Sprintf("%d-%d", d.StartAge, d.EndAge)))
		}
		cells = append(cells, p.s.box.Width(18).Render(b.String()))
	}
	for row := 0; row < 12; row += 4 {
		p.println(lipgloss.JoinHorizontal(lipgloss.Top, cells[row:row+4]...))
	}
}

// Transit renders transiting positions in natal houses and their aspects.
func (p *Printer) Transit(t *natal.Transit) {
	p.println(p.s.title.Render("Transits"))
	p.println(p.field("JD", strconv.FormatFloat(t.JD, 'f', 5, 64)))
	p.println(p.s.section.Render("Positions"))
	for _, pl := range t.Placements {
		retro := ""
		if pl.Retrograde {
			retro = " " + p.s.danger.Render(iconRetrograde)
		}
		p.println(p.s.cell.Render(p.s.label.Render(string(pl.Body))),
			p.s.value.Render(zodiac.Format(pl.Longitude)), retro,
			p.s.muted.Render(fmt.Sprintf("  natal house %d", pl.House)))
	}
	p.Aspects(t.Aspects, 0)
}

// Error renders an error message.
func (p *Printer) Error(msg string) {
	p.println(p.s.danger.Bold(true).Render("error: ") + msg)
}
