/*Package fourth defines naive local and UTC datetimes for starlark, backed by
the fourth package.

  outline: fourth
    fourth defines local and UTC datetimes for starlark
    path: fourth
    functions:
      local_datetime(year, month, day, hour=0, minute=0, second=0, microsecond=0) local_datetime
        build a local datetime from its fields
      local_now() local_datetime
        the current wall clock of the host zone
      local_from_iso_format(string) local_datetime
        parse ISO 8601 text without an offset
      local_strptime(s, format) local_datetime
        parse text with a strptime format that has no %z
      utc_datetime(year, month, day, hour=0, minute=0, second=0, microsecond=0) utc_datetime
        build a UTC datetime from its fields
      utc_now() utc_datetime
        the current instant
      utc_from_iso_format(string) utc_datetime
        parse ISO 8601 text with an offset
      utc_strptime(s, format) utc_datetime
        parse text with a strptime format that has %z
      utc_from_timestamp(number) utc_datetime
        seconds since the Unix epoch
      delta(days=0, seconds=0, microseconds=0, milliseconds=0, minutes=0, hours=0, weeks=0) delta
        a span of microseconds

    constants:
      local_min, local_max, utc_min, utc_max
      microsecond, millisecond, second, minute, hour, day, week

    types:
      local_datetime
        fields:
          year int
          month int
          day int
          hour int
          minute int
          second int
          microsecond int
          weekday int (Monday is 0)
          yearday int
        functions:
          iso_format(sep="T", timespec="microseconds") string
          strftime(string) string
          to_utc(zone="Local") utc_datetime
        operators:
          local_datetime + delta = local_datetime
          local_datetime - delta = local_datetime
          local_datetime - local_datetime = delta
          local_datetime < local_datetime = boolean
      utc_datetime
        fields:
          as local_datetime
        functions:
          iso_format(sep="T", timespec="microseconds") string
          strftime(string) string
          timestamp() float
          unix_micro() int
          to_local(zone="Local") local_datetime
        operators:
          as local_datetime, with utc_datetime operands
      delta
        fields:
          days int
          seconds int
          microseconds int
        functions:
          total_seconds() float
        operators:
          delta + delta = delta
          delta - delta = delta
          delta * int = delta
          delta // int = delta
          delta // delta = int
          delta / delta = float
          delta % delta = delta
          -delta = delta
*/
package fourth
