package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	gogtfs "github.com/jamespfennell/gtfs"

	"triphub/geo"
)

// requiredFiles are the five tabular files a feed must provide. Missing any
// of them puts the planner in disabled mode.
var requiredFiles = []string{"stops.txt", "stop_times.txt", "trips.txt", "routes.txt", "calendar.txt"}

// optionalFiles are zipped alongside requiredFiles when present, but their
// absence never disables the planner.
var optionalFiles = []string{"agency.txt"}

// ErrFeedUnavailable is returned by Load when a mandatory GTFS file is
// absent. Callers should treat this as "planner disabled", not a fatal error.
type ErrFeedUnavailable struct {
	Missing string
}

func (e *ErrFeedUnavailable) Error() string {
	return fmt.Sprintf("gtfs: required file missing: %s", e.Missing)
}

// Load reads the five tabular files under dir, hands them to the static
// GTFS parser, and builds a frozen Index from the result.
func Load(dir string) (*Index, error) {
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, &ErrFeedUnavailable{Missing: name}
		}
	}

	archive, err := zipFeed(dir)
	if err != nil {
		return nil, err
	}

	static, err := gogtfs.ParseStatic(archive, gogtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("gtfs: parse feed: %w", err)
	}

	return build(toRawFeed(static)), nil
}

type rawFeed struct {
	stops     map[string]Stop
	routes    map[string]Route
	trips     map[string]Trip
	calendars map[string]ServiceCalendar
	agencies  map[string]Agency
	stopTimes []StopTime
}

// zipFeed packages the feed directory's flat txt files into the in-memory
// zip archive the parser expects as input. Optional files (agency.txt) are
// included when present and skipped silently otherwise.
func zipFeed(dir string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range requiredFiles {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("gtfs: read %s: %w", name, err)
		}
		entry, err := w.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := entry.Write(content); err != nil {
			return nil, err
		}
	}
	for _, name := range optionalFiles {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		entry, err := w.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := entry.Write(content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toRawFeed flattens the parser's entity graph into the shapes build()
// expects, skipping any row the parser left without the fields our
// planner relies on (feed robustness).
func toRawFeed(static *gogtfs.Static) *rawFeed {
	raw := &rawFeed{
		stops:     map[string]Stop{},
		routes:    map[string]Route{},
		trips:     map[string]Trip{},
		calendars: map[string]ServiceCalendar{},
		agencies:  map[string]Agency{},
	}

	for _, a := range static.Agencies {
		if a.Id == "" {
			continue
		}
		raw.agencies[a.Id] = Agency{ID: a.Id, Name: a.Name, Timezone: a.Timezone}
	}

	for _, s := range static.Stops {
		if s.Id == "" || s.Latitude == nil || s.Longitude == nil {
			log.Printf("gtfs: skipping stop with no coordinates: %s", s.Id)
			continue
		}
		raw.stops[s.Id] = Stop{
			ID:    s.Id,
			Name:  s.Name,
			Coord: geo.Coordinate{Lat: *s.Latitude, Lng: *s.Longitude},
		}
	}

	for _, r := range static.Routes {
		if r.Id == "" {
			continue
		}
		route := Route{
			ID:        r.Id,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Type:      fmt.Sprintf("%d", r.Type),
		}
		if r.Agency != nil {
			route.AgencyID = r.Agency.Id
			if agency, ok := raw.agencies[r.Agency.Id]; ok {
				route.AgencyName = agency.Name
			}
		}
		raw.routes[r.Id] = route
	}

	for _, svc := range static.Services {
		raw.calendars[svc.Id] = ServiceCalendar{
			ServiceID: svc.Id,
			ActiveDays: [7]bool{
				svc.Sunday, svc.Monday, svc.Tuesday, svc.Wednesday,
				svc.Thursday, svc.Friday, svc.Saturday,
			},
			StartDate: dateToYYYYMMDD(svc.StartDate),
			EndDate:   dateToYYYYMMDD(svc.EndDate),
		}
	}

	for _, t := range static.Trips {
		if t.ID == "" {
			log.Printf("gtfs: skipping trip with empty id")
			continue
		}
		routeID, serviceID := "", ""
		if t.Route != nil {
			routeID = t.Route.Id
		}
		if t.Service != nil {
			serviceID = t.Service.Id
		}
		raw.trips[t.ID] = Trip{
			ID:        t.ID,
			RouteID:   routeID,
			ServiceID: serviceID,
			Headsign:  t.Headsign,
		}

		for _, st := range t.StopTimes {
			if st.Stop == nil {
				log.Printf("gtfs: skipping malformed stop_time for trip %s", t.ID)
				continue
			}
			raw.stopTimes = append(raw.stopTimes, StopTime{
				TripID:       t.ID,
				StopID:       st.Stop.Id,
				Sequence:     int(st.StopSequence),
				ArrivalSec:   int(st.ArrivalTime / time.Second),
				DepartureSec: int(st.DepartureTime / time.Second),
			})
		}
	}

	return raw
}

func dateToYYYYMMDD(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
