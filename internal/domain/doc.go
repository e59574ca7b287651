// Package domain models tropical-cyclone residual vortex (TRV) track data.
//
// # Data Source
//
// TRV best-track files cover residual vortices of tropical cyclones after
// landfall over the Chinese mainland, 1980-2024, at 1-hour resolution within
// 15°N-55°N, 95°E-140°E. The file is line oriented and comma separated with
// no quoting: each vortex contributes one header line followed by its track
// point lines.
//
// # Header Line
//
// Exactly 8 fields:
//
//	66666,2309,48,2305,2309,2,HAIKUI,20230905
//	 flag  intl count seq  regn stop  name   start
//
//	flag        literal "66666", the sentinel marking a header line
//	intl_code   international ID: last 2 digits of year + 2-digit number
//	count       declared number of track records (authoritative but not
//	            always accurate; the scanner reconciles it)
//	sequence    original TC sequence number from the tracking agency
//	regional    regional (Chinese) TC number
//	stop        reason tracking ended, integer code (see [StopReason])
//	name        English TC name, may be empty, may contain non-Latin text
//	start_date  first tracked day, YYYYMMDD; the year is its first 4 chars
//	            and the date is otherwise not validated
//
// # Track Line
//
// Exactly 6 fields, one observation per hour:
//
//	2023090508,251,1182,-120,35,42
//
//	timestamp        YYYYMMDDHH
//	lat, lon         0.1° units; divide by 10 for degrees
//	stream_function  850 hPa stream function, 10⁴ m²/s
//	vorticity        850 hPa vorticity, 10⁻⁵ s⁻¹
//	velocity         850 hPa wind speed, 0.1 m/s units; divide by 10 for m/s
//
// # Stop Reasons
//
//	0  no vortex feature detected
//	1  vortex merged with another system
//	2  vortex weakened or split
//	3  vortex moved outside the tracking boundary
//
// Codes outside 0-3 appear in some files and are preserved as-is; they are
// labeled "Unknown" in reports, never rejected.
//
// # Duration
//
// With 1-hour sampling, a track's point count doubles as its duration in
// hours. Statistics use the actual number of points recovered by the
// scanner, not the declared count.
package domain
