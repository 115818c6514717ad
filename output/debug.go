package output

import (
	"time"

	"github.com/esimov/bling/damage"
)

// DamageFadeOut is how long a damaged region stays highlighted when debug
// damage tracking is on.
const DamageFadeOut = 250 * time.Millisecond

// Highlight is a recently damaged region. Alpha fades from 1 to 0.
type Highlight struct {
	Region damage.Region
	Alpha  float64
}

type debugRegion struct {
	region damage.Region
	when   time.Time
}

// SetDebugDamageTracking toggles the highlighting of damaged regions.
func (o *Output) SetDebugDamageTracking(enable bool) {
	o.debugTracking = enable
	if !enable && len(o.debugDamage) > 0 {
		o.debugDamage = nil
		o.ring.AddWhole()
		o.ScheduleFrame()
	}
}

// DebugDamageTracking reports whether damaged regions get highlighted.
func (o *Output) DebugDamageTracking() bool { return o.debugTracking }

// buildDebugDamage records the current damage and returns the highlights
// still visible at now. The highlighted area is added to the damage so it
// gets repainted until it faded out.
func (o *Output) buildDebugDamage(now time.Time) []Highlight {
	if !o.debugTracking {
		return nil
	}

	if cur := o.ring.Current(); !cur.Empty() {
		o.debugDamage = append([]*debugRegion{{region: cur, when: now}}, o.debugDamage...)
	}

	var (
		highlighted damage.Region
		highlights  []Highlight
		kept        = o.debugDamage[:0]
	)
	for _, d := range o.debugDamage {
		// Newer damage already covers the overlap.
		d.region.Subtract(highlighted)
		highlighted.Union(d.region)

		alpha := 1 - float64(now.Sub(d.when))/float64(DamageFadeOut)
		if alpha <= 0 || d.region.Empty() {
			continue
		}
		kept = append(kept, d)
		highlights = append(highlights, Highlight{Region: d.region.Clone(), Alpha: alpha})
	}
	for i := len(kept); i < len(o.debugDamage); i++ {
		o.debugDamage[i] = nil
	}
	o.debugDamage = kept

	if !highlighted.Empty() {
		o.ring.Add(highlighted)
	}
	return highlights
}
