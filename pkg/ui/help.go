package ui

// HelpText is the static screen shown when the operator presses 'h'.
// Rendering pauses until the next keypress.
const HelpText = `proctop help

Interactive keys:
  q, Ctrl+C   quit
  h, ?        show this help (any key resumes)

Columns:
  PID      process identifier
  PPID     parent process identifier
  S        run state: R running, S sleeping, Z zombie, O other, ? unknown
  NI       scheduling nice value
  %CPU     share of one core consumed since the previous sample
  TIME+    cumulative CPU time (user + kernel)
  COMMAND  command name

Press any key to resume.
`
