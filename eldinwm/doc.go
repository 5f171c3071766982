/*
Eldinwm is a minimal tiling window manager. Every output has a fixed number of
workspaces and every workspace holds at most two windows: one window fills the
output, two windows split it into left and right halves. New windows go to the
first workspace, on the first output, that has room.


INSTALLATION

To install eldinwm:
	go install github.com/eldinwm/eldinwm/eldinwm@latest

Eldinwm is designed to run from an Xsession session. Add this line to the end
of your ~/.xsession file:
	/path/to/your/eldinwm


USAGE

All shortcuts are pressed with exactly Control and Shift held. Holding any
other modifier, including Num Lock, disables them.
	Control-Shift-Left   shows the previous workspace on every output
	Control-Shift-Right  shows the next workspace on every output
	Control-Shift-X      moves the keyboard focus to the other window
	Control-Shift-Z      opens the command box
	Control-Shift-Down   exits eldinwm

The command box takes every key press while it is open. Type a shell command
and press Return to run it with /bin/sh, or press Escape to discard it.
Backspace deletes the last character. The command is at most 512 bytes long.

Windows that arrive when every workspace is full are kept offscreen. They are
placed when they are next mapped.


CONFIGURATION

Eldinwm reads $XDG_CONFIG_HOME/eldinwm/eldinwm.conf, or, if XDG_CONFIG_HOME is
not set, ~/.config/eldinwm/eldinwm.conf if it exists, or else
/etc/eldinwm/eldinwm.conf. The --config flag names another file. The file has
one key=value setting per line:
	# Number of workspaces per output, from 1 to 16. The default is 4.
	workspaces=6
	# Height in pixels of the workspace indicator strip. The default, 0,
	# hides it.
	indicator_height=20

The --workspaces flag overrides the workspaces setting.

Log output goes to standard error. Setting LOG_MODE=structured switches it
from console to JSON lines.
*/
package main
