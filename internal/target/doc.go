// Target expressions
/*
A target names a line of the file relative to a reference line (normally the focus line).
Commands such as LOCATE, CHANGE, ALL, TAG and SORT accept a target to say where they stop.

Simple targets
n         The n-th line in scope after the reference line. -n looks before it.
:n ;n     Absolute line n.
*         The bottom of file; -* is the top of file.
.name     The line named with SET POINT .name.
/string/  The next line containing string. Any of / \ @ # $ % ^ ( ) _ = { } [ ] ' " < > , ? !
          may be used as the delimiter. The closing delimiter may be omitted at the end of
          the target. A leading - searches toward the top of file.
REGEXP /re/
          The next line matching the regular expression re. Abbreviates down to R. Regular
          expressions only search forward.
BLANK     A line blank within the zone.
NEW       A line added since the file was loaded.
CHANGED   A line changed since the file was loaded.
ALTERED   A line that is new or changed.
TAGGED    A line tagged with TAG.
ALL       The whole file.
BLOCK     The lines of the marked block.
Keywords are case insensitive and may be abbreviated to three letters.

Compound targets
~t        Negates simple target t.
t1 & t2   Both t1 and t2 match the line.
t1 | t2   Either matches.
Terms are combined strictly left to right: a|b&c means (a|b)&c. All terms must search in
the same direction, and ALL, BLOCK and REGEXP may not be combined with other terms.
A string, regexp or line attribute never matches the top or bottom of file, negated or not,
and is only tested on the reference line by a search.

Some commands accept more text after the target, for example the count of CHANGE. When the
caller allows it, anything after a complete target that is not & or | is returned as the
spare text.

Column targets (CLOCATE) use the same syntax over the columns of one line: n moves n columns,
:n names column n, /string/ finds a column where string starts and BLANK a blank column.

Grammar:

target   -> term (('&' | '|') term)* spare?
term     -> '~'? sign? simple | sign '~' simple
sign     -> '+' | '-'
simple   -> digits | (':' | ';') digits | '*' | '.' name | keyword
          | delim text delim? | regexpkw ws* delim pattern delim?
keyword  -> ALL | ALTERED | BLANK | BLOCK | CHANGED | NEW | TAGGED
regexpkw -> REGEXP
*/
package target
