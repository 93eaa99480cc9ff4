/*
Package fourth supplies simple datetime types.

LocalDatetime is a wall-clock reading with no timezone. UTCDatetime is an
instant that is always expressed in UTC. Both have microsecond precision
and cover the years 1 through 9999; every constructor validates its input
instead of normalising it, and every operation that could leave the range
reports ErrOutOfRange.

Delta is the signed span between two datetimes, counted in microseconds.

	outline: fourth
	  types:
	    LocalDatetime
	      constructors: LocalAt, LocalNow, LocalFromTime,
	        LocalFromISOFormat, LocalStrptime
	    UTCDatetime
	      constructors: UTCAt, UTCNow, UTCFromTime, UTCFromTimestamp,
	        UTCFromUnixMicro, UTCFromISOFormat, UTCStrptime, UTCFromProto
	    Delta
	      constants: Microsecond, Millisecond, Second, Minute, Hour, Day, Week
	  operators (as methods):
	    datetime.Add(delta) = datetime
	    datetime.Sub(datetime) = delta
	    datetime.Compare(datetime) = -1, 0, +1
	  text:
	    ISOFormat(sep, timespec), String, Strftime(format)

The types implement encoding.TextMarshaler, json.Marshaler,
driver.Valuer and sql.Scanner (and their inverses), so they can be
stored and transmitted as ISO 8601 text.
*/
package fourth
