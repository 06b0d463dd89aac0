/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package feed

////////////////////////////////////////////////////////////////////////////////////////////////////

// ChangeStyle is the icon token and color name a change note renders with.
type ChangeStyle struct {
	Icon  string
	Color string
}

var changeStyles = map[ChangeType]ChangeStyle{
	Feature:     {Icon: "sparkles", Color: "blue"},
	Fix:         {Icon: "sparkles", Color: "green"},
	Improvement: {Icon: "sparkles", Color: "purple"},
	Security:    {Icon: "sparkles", Color: "red"},
	Other:       {Icon: "sparkles", Color: "gray"},
}

func StyleFor(t ChangeType) ChangeStyle {
	return changeStyles[t.Kind()]
}

////////////////////////////////////////////////////////////////////////////////////////////////////
